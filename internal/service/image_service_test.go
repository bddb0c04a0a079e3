package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/dealspro/dealspro_api/internal/config"
	"github.com/dealspro/dealspro_api/internal/utils"
)

func staticCreds() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"}, nil
	})
}

func TestImageService_Disabled(t *testing.T) {
	svc, err := NewImageService(context.Background(), config.S3Config{})
	if err != nil {
		t.Fatal(err)
	}
	if svc.Enabled() {
		t.Error("service without bucket should be disabled")
	}
	if _, err := svc.UploadDealImage(context.Background(), "image/png", []byte("x")); !errors.Is(err, utils.ErrUploadDisabled) {
		t.Errorf("err = %v, want ErrUploadDisabled", err)
	}
}

func TestNewDisabledImageService(t *testing.T) {
	svc := NewDisabledImageService()
	if svc.Enabled() {
		t.Error("disabled service reports enabled")
	}
	if _, err := svc.UploadDealImage(context.Background(), "image/jpeg", []byte("x")); !errors.Is(err, utils.ErrUploadDisabled) {
		t.Errorf("err = %v, want ErrUploadDisabled", err)
	}
}

func TestImageService_UploadSignsRequest(t *testing.T) {
	var (
		gotAuth, gotPath, gotType string
		gotBody                   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := newImageService(config.S3Config{Bucket: "deals", Region: "ap-south-1", Endpoint: srv.URL}, staticCreds())

	url, err := svc.UploadDealImage(context.Background(), "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("UploadDealImage error: %v", err)
	}
	if !strings.HasPrefix(url, srv.URL+"/deals/deals/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q", url)
	}
	if !strings.HasPrefix(gotAuth, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/") {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if !strings.HasPrefix(gotPath, "/deals/deals/") || gotType != "image/png" || string(gotBody) != "png-bytes" {
		t.Errorf("request path %q type %q body %q", gotPath, gotType, gotBody)
	}
}

func TestImageService_RejectsUnsupported(t *testing.T) {
	svc := newImageService(config.S3Config{Bucket: "deals", Region: "ap-south-1"}, staticCreds())

	if _, err := svc.UploadDealImage(context.Background(), "application/pdf", []byte("x")); !errors.Is(err, utils.ErrUnsupportedImage) {
		t.Errorf("pdf err = %v", err)
	}
	if _, err := svc.UploadDealImage(context.Background(), "image/jpeg", nil); !errors.Is(err, utils.ErrUnsupportedImage) {
		t.Errorf("empty err = %v", err)
	}
	if got := svc.ObjectURL("deals/a.jpg"); got != "https://deals.s3.ap-south-1.amazonaws.com/deals/a.jpg" {
		t.Errorf("ObjectURL = %q", got)
	}
}

func TestImageService_UploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "AccessDenied", http.StatusForbidden)
	}))
	defer srv.Close()

	svc := newImageService(config.S3Config{Bucket: "deals", Region: "ap-south-1", Endpoint: srv.URL}, staticCreds())
	if _, err := svc.UploadDealImage(context.Background(), "image/jpeg", []byte("jpg")); err == nil {
		t.Error("403 from S3 should fail the upload")
	}
}
