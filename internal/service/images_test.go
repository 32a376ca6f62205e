package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestSaveAcceptedImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService(dir)

	path, err := svc.Save(uploadHeader(t, "latte art.PNG", []byte("imagedata")))
	require.NoError(t, err)
	assert.Equal(t, "images/latte_art.PNG", path)

	data, err := os.ReadFile(filepath.Join(dir, "latte_art.PNG"))
	require.NoError(t, err)
	assert.Equal(t, "imagedata", string(data))
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService(dir)

	for _, name := range []string{"malware.exe", "noextension", "script.png.sh", "style.css"} {
		_, err := svc.Save(uploadHeader(t, name, []byte("x")))
		assert.ErrorIs(t, err, ErrUploadRejected, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may reach the upload dir")
}

func TestSaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService(dir)

	path, err := svc.Save(uploadHeader(t, "../../etc/evil.png", []byte("x")))
	require.NoError(t, err)
	assert.Equal(t, "images/evil.png", path)

	_, err = os.Stat(filepath.Join(dir, "evil.png"))
	assert.NoError(t, err)
}

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"latte.png":          "latte.png",
		"my latte.png":       "my_latte.png",
		"..\\..\\evil.jpg":   "evil.jpg",
		"../traversal.gif":   "traversal.gif",
		"...hidden.png":      "hidden.png",
		"sömé_軸.png":         "sm_.png",
		"!!!":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, secureFilename(in), in)
	}
}
