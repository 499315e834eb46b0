package testing

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/onsi/gomega"
)

type RequestModifier func(r *http.Request)

type RequestModifiers []RequestModifier

func (r *RequestModifiers) Add(mods ...RequestModifier) {
	*r = append(*r, mods...)
}

type UploadFile struct {
	FieldName string
	FileName  string
	Content   []byte
}

type RequestFactory struct {
	Method string
	Target string
	Fields map[string]string
	File   *UploadFile
	Mods   RequestModifiers
}

func (r RequestFactory) isMultipart() bool {
	return r.File != nil || len(r.Fields) > 0
}

func (r RequestFactory) body() (io.Reader, string) {
	if !r.isMultipart() {
		return nil, ""
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range r.Fields {
		err := writer.WriteField(key, value)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
	}

	if r.File != nil {
		part, err := writer.CreateFormFile(r.File.FieldName, r.File.FileName)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())

		_, err = part.Write(r.File.Content)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
	}

	err := writer.Close()
	gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())

	return buf, writer.FormDataContentType()
}

func (r RequestFactory) MakeFake() *http.Request {
	body, contentType := r.body()
	request := httptest.NewRequest(r.Method, r.Target, body)

	if contentType != "" {
		request.Header.Set(echo.HeaderContentType, contentType)
	}

	for _, mod := range r.Mods {
		mod(request)
	}

	return request
}
