package config

import (
	"testing"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "local mode defaults",
			config: Config{
				Image: DefaultImage,
			},
			wantErr: false,
		},
		{
			name: "docker mode with image",
			config: Config{
				Docker: true,
				Image:  "google/cloud-sdk:503.0.0",
			},
			wantErr: false,
		},
		{
			name: "docker mode with named volume",
			config: Config{
				Docker: true,
				Image:  DefaultImage,
				Volume: "gcloud-creds",
			},
			wantErr: false,
		},
		{
			name: "docker mode without image",
			config: Config{
				Docker: true,
			},
			wantErr: true,
		},
		{
			name: "volume without docker mode",
			config: Config{
				Image:  DefaultImage,
				Volume: "gcloud-creds",
			},
			wantErr: true,
		},
		{
			name: "invalid volume name",
			config: Config{
				Docker: true,
				Image:  DefaultImage,
				Volume: "not/a volume",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestImageTagged(t *testing.T) {
	tests := []struct {
		image string
		want  bool
	}{
		{"google/cloud-sdk", false},
		{"google/cloud-sdk:503.0.0", true},
		{"cloud-sdk:latest", true},
		{"registry.example.com:5000/google/cloud-sdk", false},
		{"registry.example.com:5000/google/cloud-sdk:alpine", true},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			cfg := &Config{Image: tt.image}
			if got := cfg.ImageTagged(); got != tt.want {
				t.Errorf("ImageTagged(%q) = %v, want %v", tt.image, got, tt.want)
			}
		})
	}
}

func TestImageRepository(t *testing.T) {
	tests := []struct {
		image string
		want  string
	}{
		{"google/cloud-sdk", "google/cloud-sdk"},
		{"google/cloud-sdk:503.0.0", "google/cloud-sdk"},
		{"registry.example.com:5000/google/cloud-sdk:alpine", "registry.example.com:5000/google/cloud-sdk"},
		{"registry.example.com:5000/google/cloud-sdk", "registry.example.com:5000/google/cloud-sdk"},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			cfg := &Config{Image: tt.image}
			if got := cfg.ImageRepository(); got != tt.want {
				t.Errorf("ImageRepository(%q) = %q, want %q", tt.image, got, tt.want)
			}
		})
	}
}
