package splitevents_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	splitevents "github.com/veedubyou/track-splitter/src/shared/split/events"
	"github.com/veedubyou/track-splitter/src/shared/testing/dummy"
)

var _ = Describe("Events", func() {
	var (
		rabbitMQ  *dummy.RabbitMQ
		publisher splitevents.QueuePublisher
		event     splitevents.StemsSeparated
	)

	BeforeEach(func() {
		rabbitMQ = dummy.NewRabbitMQ()
		publisher = splitevents.NewQueuePublisher(rabbitMQ)
		event = splitevents.StemsSeparated{
			JobID:       "job-ID",
			BaseName:    "song",
			Engine:      splitentity.DemucsType,
			Quality:     splitentity.LowQuality,
			VocalsFile:  "song_vocals_2024_03_05_09_07.mp3",
			KaraokeFile: "song_karaoke_2024_03_05_09_07.mp3",
		}
	})

	It("publishes a typed json message", func() {
		Expect(publisher.PublishStemsSeparated(context.Background(), event)).To(Succeed())

		Expect(rabbitMQ.Published).To(HaveLen(1))
		message := rabbitMQ.Published[0]
		Expect(message.Type).To(Equal(splitevents.StemsSeparatedType))
		Expect(message.MessageId).To(Equal("job-ID"))

		body := map[string]any{}
		Expect(json.Unmarshal(message.Body, &body)).To(Succeed())
		Expect(body).To(Equal(map[string]any{
			"job_id":       "job-ID",
			"base_name":    "song",
			"engine":       "demucs",
			"quality":      "low",
			"vocals_file":  "song_vocals_2024_03_05_09_07.mp3",
			"karaoke_file": "song_karaoke_2024_03_05_09_07.mp3",
		}))
	})

	It("returns the error when rabbitMQ is down", func() {
		rabbitMQ.Unavailable = true
		Expect(publisher.PublishStemsSeparated(context.Background(), event)).NotTo(Succeed())
	})
})
