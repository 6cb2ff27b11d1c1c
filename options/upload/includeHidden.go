package upload

import "github.com/c2fo/synfs/options"

const optionNameIncludeHidden = "includeHidden"

// WithIncludeHidden returns IncludeHidden implementation of UploadOption
func WithIncludeHidden() options.UploadOption {
	return IncludeHidden{}
}

// IncludeHidden represents the UploadOption that is used to upload dot-prefixed
// files, which uploads otherwise skip silently.
type IncludeHidden struct{}

// UploadOptionName returns the name of IncludeHidden option
func (w IncludeHidden) UploadOptionName() string {
	return optionNameIncludeHidden
}
