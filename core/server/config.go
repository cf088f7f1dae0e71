package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SellerHeader is the request header carrying the seller scope.
	SellerHeader string `mapstructure:"seller_header" default:"X-Seller-ID"`
}

// RequireAuth reports whether API key authentication is enabled.
// An empty key means the instance runs open (local development).
func (c Config) RequireAuth() bool {
	return c.ApiKey != ""
}
