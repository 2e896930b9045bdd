package tweenjump

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNoAssetSource is returned for queued assets when the loader has neither
// a base URL nor a file system.
var ErrNoAssetSource = errors.New("no asset source configured")

type assetRequest struct {
	key, path string
}

// Loader collects image requests during Scene.OnLoad and decodes them in
// Load. Paths resolve against the base URL when one is set, otherwise
// against the loader's file system.
type Loader struct {
	fsys    fs.FS
	baseURL string
	client  *http.Client
	queue   []assetRequest
}

// NewLoader returns a loader reading from fsys. fsys may be nil when the
// scene sets a base URL.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, client: http.DefaultClient}
}

// SetBaseURL makes subsequent loads fetch over HTTP from u. An empty u
// switches back to the file system.
func (l *Loader) SetBaseURL(u string) {
	l.baseURL = strings.TrimRight(u, "/")
}

// SetHTTPClient replaces the client used for base-URL loads.
func (l *Loader) SetHTTPClient(c *http.Client) {
	l.client = c
}

// Image queues an image to be registered under key. A later request for the
// same key replaces the earlier one.
func (l *Loader) Image(key, p string) {
	for i := range l.queue {
		if l.queue[i].key == key {
			l.queue[i].path = p
			return
		}
	}
	l.queue = append(l.queue, assetRequest{key: key, path: p})
}

// Pending returns the number of queued requests.
func (l *Loader) Pending() int {
	return len(l.queue)
}

// Load decodes every queued image and empties the queue. The returned map
// holds the images that loaded; the error joins the failures of the rest.
func (l *Loader) Load(ctx context.Context) (map[string]*ebiten.Image, error) {
	out := make(map[string]*ebiten.Image, len(l.queue))
	var errs []error
	for _, req := range l.queue {
		img, err := l.loadImage(ctx, req.path)
		if err != nil {
			errs = append(errs, fmt.Errorf("load %q: %w", req.key, err))
			continue
		}
		out[req.key] = ebiten.NewImageFromImage(img)
		debugf("asset %q loaded from %s", req.key, req.path)
	}
	l.queue = l.queue[:0]
	return out, errors.Join(errs...)
}

func (l *Loader) loadImage(ctx context.Context, p string) (image.Image, error) {
	rc, err := l.open(ctx, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return img, nil
}

func (l *Loader) open(ctx context.Context, p string) (io.ReadCloser, error) {
	if l.baseURL != "" {
		return l.fetch(ctx, p)
	}
	if l.fsys == nil {
		return nil, ErrNoAssetSource
	}
	return l.fsys.Open(path.Clean(strings.TrimPrefix(p, "/")))
}

func (l *Loader) fetch(ctx context.Context, p string) (io.ReadCloser, error) {
	u, err := url.JoinPath(l.baseURL, p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}
