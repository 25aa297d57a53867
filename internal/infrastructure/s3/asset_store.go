package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appconfig "github.com/Dumstain/GPSBackendFarmacia/pkg/config"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/ports"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var _ ports.AssetStore = (*AssetStore)(nil)

// AssetStore almacén de binarios sobre S3 (o compatible: MinIO, R2, Spaces).
// Implementa el contrato consumido por el catálogo: subir bytes y devolver
// la referencia estable que se guarda tal cual en el producto.
type AssetStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// New construye el almacén desde la configuración. Devuelve (nil, nil) si no
// hay bucket configurado: el almacén queda deshabilitado, no es un error.
func New(ctx context.Context, cfg appconfig.S3Config) (*AssetStore, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	// Credenciales estáticas (necesarias para MinIO / R2 / Spaces)
	if cfg.Key != "" && cfg.Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		))
	}
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // necesario para MinIO
		})
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &AssetStore{
		client:  s3.NewFromConfig(awsCfg, clientOpts...),
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// Put sube el contenido bajo key y devuelve la URL pública del objeto.
func (s *AssetStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3: put %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}
