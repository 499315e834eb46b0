package splitstorage_test

import (
	"context"
	"time"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	dynamolib "github.com/veedubyou/track-splitter/src/shared/lib/dynamo"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	splitstorage "github.com/veedubyou/track-splitter/src/shared/split/storage"
	. "github.com/veedubyou/track-splitter/src/shared/testing"
)

var _ = Describe("Separation ledger", func() {
	var (
		db     dynamolib.DynamoDBWrapper
		ledger splitstorage.DB
		record splitstorage.SeparationRecord
	)

	BeforeEach(func() {
		SkipWithoutDynamo()

		db = MakeTestDB("storage_test")
		DeleteAllTables(db)
		DeferCleanup(DeleteAllTables, db)

		ledger = splitstorage.NewDB(db)
		Expect(ledger.EnsureTable()).To(Succeed())

		record = splitstorage.SeparationRecord{
			ID:        "job-ID",
			InputName: "song.mp3",
			BaseName:  "song",
			Engine:    splitentity.DemucsType,
			Quality:   splitentity.HighQuality,
			Status:    splitstorage.CompletedStatus,
			Vocals: &splitstorage.ArtifactRecord{
				FileName: "song_vocals_2024_03_05_09_07.wav",
				Format:   splitentity.WAVFormat,
			},
			Instrumental: &splitstorage.ArtifactRecord{
				FileName: "song_karaoke_2024_03_05_09_07.wav",
				Format:   splitentity.WAVFormat,
			},
			CreatedAt: time.Date(2024, time.March, 5, 9, 7, 42, 0, time.UTC),
		}
	})

	It("reads back what was put", func() {
		Expect(ledger.PutRecord(context.Background(), record)).To(Succeed())
		Expect(ExpectSuccess(ledger.GetRecord(context.Background(), "job-ID"))).To(Equal(record))
	})

	It("is idempotent about the table", func() {
		Expect(ledger.EnsureTable()).To(Succeed())
	})

	It("marks missing records", func() {
		_, err := ledger.GetRecord(context.Background(), "nope")
		Expect(markers.Is(err, splitstorage.RecordNotFoundMark)).To(BeTrue())
	})
})
