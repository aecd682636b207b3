package pixeltest

import (
	"bytes"
	"sync"

	"github.com/framegrace/pixelos/pixel"
)

// LogRecorder collects per-app log streams in memory and remembers a start
// offset per app, so assertions can be scoped to the current test phase
// instead of the whole process lifetime.
type LogRecorder struct {
	mu    sync.Mutex
	bufs  map[string]*bytes.Buffer
	marks map[string]int
}

// NewLogRecorder returns an empty recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{
		bufs:  make(map[string]*bytes.Buffer),
		marks: make(map[string]int),
	}
}

// Logger returns a pixel.Logger for app whose output lands in the recorder.
func (r *LogRecorder) Logger(app string) *pixel.Logger {
	return pixel.NewLogger(app, r.writer(app))
}

func (r *LogRecorder) writer(app string) *recorderWriter {
	return &recorderWriter{rec: r, app: app}
}

func (r *LogRecorder) buf(app string) *bytes.Buffer {
	b, ok := r.bufs[app]
	if !ok {
		b = &bytes.Buffer{}
		r.bufs[app] = b
	}
	return b
}

// Mark records the current end of app's stream; Since reads start there.
func (r *LogRecorder) Mark(app string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marks[app] = r.buf(app).Len()
}

// Since returns app's log text written after the last Mark (or all of it).
func (r *LogRecorder) Since(app string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.buf(app)
	mark := r.marks[app]
	if mark > b.Len() {
		mark = b.Len()
	}
	return b.String()[mark:]
}

// All returns app's complete log text.
func (r *LogRecorder) All(app string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf(app).String()
}

type recorderWriter struct {
	rec *LogRecorder
	app string
}

func (w *recorderWriter) Write(p []byte) (int, error) {
	w.rec.mu.Lock()
	defer w.rec.mu.Unlock()
	return w.rec.buf(w.app).Write(p)
}
