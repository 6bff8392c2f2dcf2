package ocr

import (
	"context"
	"fmt"
	"time"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// VisionExtractor reads receipt text with the Google Cloud Vision API
// using document text detection.
type VisionExtractor struct {
	client  *vision.ImageAnnotatorClient
	timeout time.Duration
}

// NewVisionExtractor builds a Vision-backed extractor. Credentials come
// from ClientOptionsFromEnv; construction fails when the client cannot
// resolve any credentials.
func NewVisionExtractor(ctx context.Context, timeout time.Duration) (*VisionExtractor, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, ClientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &VisionExtractor{client: client, timeout: timeout}, nil
}

// Close releases the underlying API connection.
func (v *VisionExtractor) Close() error {
	return v.client.Close()
}

// ExtractText runs document text detection on the image and returns the
// full text annotation verbatim, newlines included. An image with no
// detectable text yields an empty string, not an error.
func (v *VisionExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", nil
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision BatchAnnotateImages: %w", err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return "", nil
	}

	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return "", fmt.Errorf("vision annotate: %s", r0.Error.Message)
	}
	if r0.FullTextAnnotation == nil {
		return "", nil
	}
	return r0.FullTextAnnotation.Text, nil
}
