package viewer

import "errors"

// fakeBackend replays scripted input and closes after the script runs out.
type fakeBackend struct {
	openErr error
	inputs  []Input

	opened   bool
	closed   int
	polls    int
	uploaded Geometry
	opts     Options
	drawn    []Camera
}

var errHeadless = errors.New("no DISPLAY")

func (f *fakeBackend) Open(opts Options) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = true
	f.opts = opts
	return nil
}

func (f *fakeBackend) Upload(g Geometry) { f.uploaded = g }

func (f *fakeBackend) ShouldClose() bool { return f.polls >= len(f.inputs) }

func (f *fakeBackend) Poll() Input {
	in := f.inputs[f.polls]
	f.polls++
	return in
}

func (f *fakeBackend) Draw(cam Camera) { f.drawn = append(f.drawn, cam) }

func (f *fakeBackend) Close() { f.closed++ }
