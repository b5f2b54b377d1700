package integration_test

const (
	dbName     = "cinema_test"
	dbUser     = "cinema"
	dbPassword = "pa55word"
)
