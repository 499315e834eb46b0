package testing

import (
	"os"

	"github.com/onsi/ginkgo/v2"
)

func DeferCleanupDir(dir string) {
	ginkgo.DeferCleanup(func() {
		_ = os.RemoveAll(dir)
	})
}
