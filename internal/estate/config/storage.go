package config

// StorageConfig содержит настройки файлового хранилища изображений.
type StorageConfig struct {
	UploadDir string `yaml:"upload_dir" env:"ESTATE_STORAGE_UPLOAD_DIR" env-default:"uploads"`
	URLPrefix string `yaml:"url_prefix" env:"ESTATE_STORAGE_URL_PREFIX" env-default:"/uploads"`
}
