package testing

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/guregu/dynamo"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/track-splitter/src/shared/config/dev"
	dynamolib "github.com/veedubyou/track-splitter/src/shared/lib/dynamo"
)

// DynamoTestHostKey points the ledger tests at a running dynamodb-local, they're skipped without it
const DynamoTestHostKey = "DYNAMODB_TEST_HOST"

func DynamoTestHost() (string, bool) {
	host, ok := os.LookupEnv(DynamoTestHostKey)
	return host, ok && host != ""
}

func SkipWithoutDynamo() {
	if _, ok := DynamoTestHost(); !ok {
		ginkgo.Skip(DynamoTestHostKey + " is not set")
	}
}

func MakeTestDB(testRegion string) dynamolib.DynamoDBWrapper {
	host, ok := DynamoTestHost()
	if !ok {
		host = dev.DynamoDBHost
	}

	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(dev.DynamoAccessKeyID, dev.DynamoSecretAccessKey, "")).
		WithEndpoint(host).
		WithRegion(testRegion)

	db := dynamo.New(dbSession, config)
	return dynamolib.NewDynamoDBWrapper(db)
}

func DeleteAllTables(db dynamolib.DynamoDBWrapper) {
	tableNames := ExpectSuccess(db.ListTables().All())

	for _, tableName := range tableNames {
		err := db.Table(tableName).DeleteTable().Run()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}
}
