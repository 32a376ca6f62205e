package service

import "errors"

var (
	ErrEmptyCart      = errors.New("cart empty")
	ErrUploadRejected = errors.New("upload rejected")
)
