package utils

import "crypto/md5"

// ComputeChecksum takes a byte slice and returns the raw MD5 checksum as a
// byte slice. The indexer uses it to skip unchanged files.
func ComputeChecksum(content []byte) []byte {
	hash := md5.New()
	hash.Write(content)
	return hash.Sum(nil)
}
