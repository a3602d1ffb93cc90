package pipeline

import "errors"

var (
	// ErrInputDecoding is returned when image bytes are in an unrecognized or corrupt format.
	ErrInputDecoding = errors.New("lofistripes: input decoding failed")

	// ErrEmptyAsset is returned when a render needs an image or font that is not set.
	ErrEmptyAsset = errors.New("lofistripes: asset is empty")

	// ErrFontParse is returned when font bytes are present but structurally invalid.
	ErrFontParse = errors.New("lofistripes: font parse failed")

	// ErrOutputEncoding is returned when the final image cannot be encoded.
	ErrOutputEncoding = errors.New("lofistripes: output encoding failed")
)
