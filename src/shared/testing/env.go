package testing

import (
	"os"

	. "github.com/onsi/gomega"
)

func SetTestEnv() {
	err := os.Setenv("ENVIRONMENT", "test")
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}
