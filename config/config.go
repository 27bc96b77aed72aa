package config

type AppConfig struct {
	ServerConfig *ServerConfig
	MemoryConfig *MemoryConfig
}

func New() *AppConfig {
	return &AppConfig{
		ServerConfig: NewServerConfig(),
		MemoryConfig: NewMemoryConfig(),
	}
}
