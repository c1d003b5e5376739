package view

import "github.com/bufkit/bufkit/internal/mmfile"

// MapFile maps the file at path read-only and returns a view over its
// entire contents, plus a cleanup that releases the mapping. The mapping is
// externally owned storage: the view and everything derived from it stay
// valid exactly until cleanup runs. Calling cleanup more than once is a
// no-op.
func MapFile(path string) (View, func() error, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return View{}, nil, err
	}
	return Of(data), cleanup, nil
}
