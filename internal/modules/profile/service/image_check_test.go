package service_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"fittrack/internal/modules/profile/domain"
	"fittrack/internal/modules/profile/service"
	apperrors "fittrack/internal/platform/errors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestCheckImageAcceptsSniffedTypes(t *testing.T) {
	t.Parallel()
	svc := service.NewProfileService(1 << 20)

	cases := []struct {
		name    string
		content []byte
		want    string
	}{
		{"png", pngHeader, "image/png"},
		{"jpeg", append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 8)...), "image/jpeg"},
		{"gif", append([]byte("GIF89a"), make([]byte, 8)...), "image/gif"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upload, err := svc.CheckImage("/home/ann/avatar.bin", tc.content)
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			if upload.ContentType != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, upload.ContentType)
			}
			if upload.Filename != "avatar.bin" {
				t.Fatalf("filename must drop the directory, got %q", upload.Filename)
			}
		})
	}
}

func TestCheckImageRejectsOversizeAndNonImages(t *testing.T) {
	t.Parallel()
	svc := service.NewProfileService(16)

	big := bytes.Repeat(pngHeader, 4)
	if _, err := svc.CheckImage("a.png", big); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("oversize content must be rejected, got %v", err)
	}
	if _, err := svc.CheckImage("a.png", []byte("just some text")); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("text content must be rejected regardless of extension, got %v", err)
	}
	if _, err := svc.CheckImage("a.png", nil); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty content must be rejected, got %v", err)
	}
}

func TestBMIDerivation(t *testing.T) {
	t.Parallel()
	p := domain.Profile{WeightKg: 72, HeightCm: 180}
	if got := p.BMI(); math.Abs(got-22.22) > 0.01 {
		t.Fatalf("expected BMI near 22.22, got %v", got)
	}
	if got := (domain.Profile{WeightKg: 72}).BMI(); got != 0 {
		t.Fatalf("missing height must yield zero, got %v", got)
	}
	if got := (domain.Profile{HeightCm: 180}).BMI(); got != 0 {
		t.Fatalf("missing weight must yield zero, got %v", got)
	}
}
