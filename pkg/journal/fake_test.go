package journal

import "errors"

// fakeDevice is a scripted Device. It copies resp into the output buffer and
// reports n bytes written, or fails with err.
type fakeDevice struct {
	resp []byte
	n    int
	err  error

	calls []fakeCall
}

type fakeCall struct {
	code   uint32
	in     []byte
	outCap int
}

func (d *fakeDevice) Control(code uint32, in, out []byte) (int, error) {
	d.calls = append(d.calls, fakeCall{
		code:   code,
		in:     append([]byte(nil), in...),
		outCap: len(out),
	})

	if d.err != nil {
		return 0, d.err
	}

	copy(out, d.resp)
	return d.n, nil
}

func respond(resp []byte) *fakeDevice {
	return &fakeDevice{resp: resp, n: len(resp)}
}

func fail(err error) *fakeDevice {
	return &fakeDevice{err: err}
}

var errNoCode = errors.New("device went away")
