package config

type MemoryConfig struct {
	TotalSize int
}

func NewMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		TotalSize: 1 << 20, // 1 MiB address space
	}
}
