package cnst

const (
	AppName = "kanri"

	// ApiServer is the name of the admin portal API server binary
	ApiServer = "apiserver"
)
