package storagepath

import "fmt"

type Generator struct {
	Host   string
	Bucket string
}

// GeneratePath places artifacts under {host}/{bucket}/{role}/{file name}, mirroring the local output tree
func (g Generator) GeneratePath(roleDir string, fileName string) string {
	return fmt.Sprintf("%s/%s/%s/%s", g.Host, g.Bucket, roleDir, fileName)
}
