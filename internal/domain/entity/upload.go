package entity

// UploadMetadata describes a stored upload.
type UploadMetadata struct {
	MimeType     string `bson:"mimetype" json:"mimetype"`
	Size         string `bson:"size" json:"size"`
	OriginalName string `bson:"originalname" json:"originalname"`
	Extension    string `bson:"extension" json:"extension"`
}

// UploadedFile is the result of storing an upload in object storage.
type UploadedFile struct {
	Key      string
	URL      string
	Metadata UploadMetadata
}
