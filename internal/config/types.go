package config

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	Environment  string
}
