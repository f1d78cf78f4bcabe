package config

import "os"

type Config struct {
	HTTPAddr           string
	UsersHTTPAddr      string
	GatewayAddr        string
	UsersServiceURL    string
	ProductsServiceURL string
	UploadDir          string
	AssetsPrefix       string
}

func Load() Config {
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":3001"),
		UsersHTTPAddr:      getenv("USERS_HTTP_ADDR", ":3002"),
		GatewayAddr:        getenv("GATEWAY_ADDR", ":3000"),
		UsersServiceURL:    getenv("USERS_SERVICE_URL", "http://localhost:3002"),
		ProductsServiceURL: getenv("PRODUCTS_SERVICE_URL", "http://localhost:3001"),
		UploadDir:          getenv("UPLOAD_DIR", "./assets/images"),
		AssetsPrefix:       getenv("ASSETS_PREFIX", "/assets"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
