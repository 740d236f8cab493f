package constant

type Expiration string

const (
	Expiration1h  Expiration = "1h"
	Expiration12h Expiration = "12h"
	Expiration24h Expiration = "24h"
	Expiration72h Expiration = "72h"

	DefaultExpiration = Expiration1h
)

// Expirations lists the retention windows the temporary upstream accepts.
var Expirations = []Expiration{Expiration1h, Expiration12h, Expiration24h, Expiration72h}

const (
	ServiceName = "file-relay-api"
	Version     = "1.0.0"

	// ReqTypeFileUpload is the request-type marker both upstreams expect.
	ReqTypeFileUpload = "fileupload"

	// FileFieldName is the multipart field both upstreams read the payload from.
	FileFieldName = "fileToUpload"

	DefaultMaxUploadSizeMB = 200

	// DefaultRemoteFilename is used when a source URL has no path segment.
	DefaultRemoteFilename = "download"
)
