package domain

// PageSpec is an offset/size window over an ordered result.
type PageSpec struct {
	Offset int
	Size   int
}

// FirstPage returns the page of the given size starting at offset 0.
func FirstPage(size int) PageSpec {
	return PageSpec{Offset: 0, Size: size}
}

// Validate rejects negative offsets and non-positive sizes.
func (p PageSpec) Validate() error {
	var errs []FieldError
	if p.Offset < 0 {
		errs = append(errs, FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if p.Size <= 0 {
		errs = append(errs, FieldError{Field: "size", Message: "must be > 0"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
