package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var allowedImageExts = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
}

type ImageService interface {
	// Save writes an uploaded product image under the upload dir and
	// returns the relative path to store on the product. Uploads whose
	// filename has no allowed extension return ErrUploadRejected.
	Save(file *multipart.FileHeader) (string, error)
}

type imageService struct{ dir string }

func NewImageService(dir string) ImageService { return &imageService{dir: dir} }

func (s *imageService) Save(file *multipart.FileHeader) (string, error) {
	if !allowedImage(file.Filename) {
		return "", ErrUploadRejected
	}
	name := secureFilename(file.Filename)
	if name == "" {
		return "", ErrUploadRejected
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "images/" + name, nil
}

func allowedImage(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	return allowedImageExts[strings.ToLower(filename[i+1:])]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename reduces a client-supplied filename to a safe single
// path component: path separators are stripped, spaces become
// underscores, and anything outside [A-Za-z0-9_.-] is removed.
func secureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = name[strings.LastIndexByte(name, '/')+1:]
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._-")
	return name
}
