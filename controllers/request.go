// File: controllers/request.go
package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"nexzen-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// readFields collects the product fields of a JSON, multipart or urlencoded
// body. Repeated form keys, and keys written as "name[]", become lists.
func readFields(c *gin.Context) (models.Document, *multipart.Form, error) {
	fields := models.Document{}

	switch c.ContentType() {
	case binding.MIMEJSON:
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return fields, nil, nil
			}
			return nil, nil, err
		}
		for k, v := range body {
			fields[k] = v
		}
		return fields, nil, nil

	case binding.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, err
		}
		addFormValues(fields, form.Value)
		return fields, form, nil

	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, nil, err
		}
		addFormValues(fields, c.Request.PostForm)
		return fields, nil, nil
	}

	return fields, nil, nil
}

func addFormValues(fields models.Document, values map[string][]string) {
	for key, vals := range values {
		if name, ok := strings.CutSuffix(key, "[]"); ok {
			fields[name] = vals
			continue
		}
		if len(vals) == 1 {
			fields[key] = vals[0]
		} else {
			fields[key] = vals
		}
	}
}

// stageUploads writes the first file of each image slot to a temporary
// directory. The returned cleanup removes the directory and any multipart
// temp files and is always safe to call.
func stageUploads(c *gin.Context, form *multipart.Form) (models.Uploads, func(), error) {
	uploads := models.Uploads{}
	if form == nil {
		return uploads, func() {}, nil
	}

	var dir string
	cleanup := func() {
		if dir != "" {
			_ = os.RemoveAll(dir)
		}
		_ = form.RemoveAll()
	}

	for _, slot := range models.ImageSlots {
		files := form.File[slot]
		if len(files) == 0 {
			continue
		}
		if dir == "" {
			var err error
			if dir, err = os.MkdirTemp("", "product-upload-*"); err != nil {
				return nil, cleanup, fmt.Errorf("create upload dir: %w", err)
			}
		}

		path := filepath.Join(dir, slot+filepath.Ext(files[0].Filename))
		if err := c.SaveUploadedFile(files[0], path); err != nil {
			return nil, cleanup, fmt.Errorf("save %s: %w", slot, err)
		}
		uploads[slot] = path
	}

	return uploads, cleanup, nil
}
