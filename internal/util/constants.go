package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
	StorageS3    = "s3"
)

// 文件上传相关常量
const (
	MimeImage = "image/"

	MaxImageSize = 10 << 20
)

var (
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)
