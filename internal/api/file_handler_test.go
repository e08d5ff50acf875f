package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/freshfest/gateway-api/internal/api"
	"github.com/freshfest/gateway-api/internal/mocks"
	"github.com/freshfest/gateway-api/internal/proto"
	"github.com/freshfest/gateway-api/internal/service/file"
)

const testMaxFileBytes = 1 << 20

func newFileHandler(client *mocks.FileClient) *api.FileHandler {
	if client == nil {
		client = &mocks.FileClient{}
	}
	return api.NewFileHandler(file.NewService(client), testMaxFileBytes)
}

type uploadForm struct {
	fileContentType string
	filename        string
	data            []byte
	tag             string
	fileType        string
}

func buildUploadRequest(t *testing.T, form uploadForm) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if form.filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+form.filename+`"`)
		header.Set("Content-Type", form.fileContentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(form.data)
		require.NoError(t, err)
	}
	if form.tag != "" {
		require.NoError(t, mw.WriteField("tag", form.tag))
	}
	if form.fileType != "" {
		require.NoError(t, mw.WriteField("type", form.fileType))
	}
	require.NoError(t, mw.Close())

	r := authedRequest(t, http.MethodPost, "/file/upload", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestUploadSuccess(t *testing.T) {
	client := &mocks.FileClient{
		UploadFunc: func(ctx context.Context, in *proto.UploadRequest, opts ...grpc.CallOption) (*proto.UploadResponse, error) {
			assert.Equal(t, []byte("png-bytes"), in.Data)
			assert.Equal(t, "avatar.png", in.Filename)
			assert.Equal(t, testUserID, in.UserId)
			assert.Equal(t, int32(1), in.Tag)
			assert.Equal(t, int32(2), in.Type)
			return &proto.UploadResponse{Url: "https://cdn.example.com/avatar.png"}, nil
		},
	}
	handler := newFileHandler(client)

	r := buildUploadRequest(t, uploadForm{
		fileContentType: "image/png",
		filename:        "avatar.png",
		data:            []byte("png-bytes"),
		tag:             "1",
		fileType:        "2",
	})
	w := httptest.NewRecorder()
	handler.Upload(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cdn.example.com")
}

func TestUploadRejectsNonImageContentType(t *testing.T) {
	called := false
	handler := newFileHandler(&mocks.FileClient{
		UploadFunc: func(ctx context.Context, in *proto.UploadRequest, opts ...grpc.CallOption) (*proto.UploadResponse, error) {
			called = true
			return &proto.UploadResponse{}, nil
		},
	})

	r := buildUploadRequest(t, uploadForm{
		fileContentType: "application/pdf",
		filename:        "cv.pdf",
		data:            []byte("%PDF"),
		tag:             "1",
		fileType:        "2",
	})
	w := httptest.NewRecorder()
	handler.Upload(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called, "Non-image parts must never reach the file backend")
}

func TestUploadRejectsBadFields(t *testing.T) {
	tests := []struct {
		name string
		form uploadForm
	}{
		{
			name: "MissingFile",
			form: uploadForm{tag: "1", fileType: "2"},
		},
		{
			name: "MissingTag",
			form: uploadForm{fileContentType: "image/jpeg", filename: "a.jpg", data: []byte("x"), fileType: "2"},
		},
		{
			name: "MissingType",
			form: uploadForm{fileContentType: "image/jpeg", filename: "a.jpg", data: []byte("x"), tag: "1"},
		},
		{
			name: "UnparsableTag",
			form: uploadForm{fileContentType: "image/jpeg", filename: "a.jpg", data: []byte("x"), tag: "first", fileType: "2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := newFileHandler(nil)
			r := buildUploadRequest(t, tc.form)
			w := httptest.NewRecorder()
			handler.Upload(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUploadAcceptsEveryImageType(t *testing.T) {
	for _, ct := range []string{"image/png", "image/jpg", "image/jpeg", "image/gif"} {
		t.Run(ct, func(t *testing.T) {
			handler := newFileHandler(&mocks.FileClient{
				UploadFunc: func(ctx context.Context, in *proto.UploadRequest, opts ...grpc.CallOption) (*proto.UploadResponse, error) {
					return &proto.UploadResponse{Url: "https://cdn.example.com/x"}, nil
				},
			})

			r := buildUploadRequest(t, uploadForm{
				fileContentType: ct,
				filename:        "pic",
				data:            []byte("img"),
				tag:             "0",
				fileType:        "0",
			})
			w := httptest.NewRecorder()
			handler.Upload(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	handler := newFileHandler(nil)

	r := buildUploadRequest(t, uploadForm{
		fileContentType: "image/png",
		filename:        "big.png",
		data:            bytes.Repeat([]byte("a"), testMaxFileBytes+1),
		tag:             "1",
		fileType:        "2",
	})
	w := httptest.NewRecorder()
	handler.Upload(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
