package media

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

const (
	wixImagePrefix = "wix:image://v1/"
	wixStaticBase  = "https://static.wixstatic.com/media/"
	// DefaultTransformation fits listing and detail imagery.
	DefaultTransformation = "c_fill,w_1200,q_auto,f_auto"
)

// Resolver turns an opaque image reference from the CMS into a URL a client
// can load. An empty result means the reference is unusable and the image
// should be omitted.
type Resolver interface {
	Resolve(ref string) string
}

// ImageResolver understands absolute URLs, Wix media references and, when a
// Cloudinary account is configured, bare Cloudinary public IDs.
type ImageResolver struct {
	cld            *cloudinary.Cloudinary
	transformation string
}

// NewImageResolver returns a resolver without Cloudinary support.
func NewImageResolver() *ImageResolver {
	return &ImageResolver{}
}

// NewCloudinaryResolver enables public ID resolution through Cloudinary.
func NewCloudinaryResolver(cloudName, apiKey, apiSecret string) (*ImageResolver, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("media: cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("media: failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &ImageResolver{cld: cld, transformation: DefaultTransformation}, nil
}

func (r *ImageResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "http://"):
		return ref
	case strings.HasPrefix(ref, wixImagePrefix):
		return wixStaticURL(ref)
	case r.cld != nil:
		return r.cloudinaryURL(ref)
	default:
		return ""
	}
}

// wixStaticURL maps wix:image://v1/<mediaId>/<name>#meta to the public media URL.
func wixStaticURL(ref string) string {
	rest := strings.TrimPrefix(ref, wixImagePrefix)
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	mediaID := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		mediaID = rest[:i]
	}
	if mediaID == "" {
		return ""
	}
	return wixStaticBase + url.PathEscape(mediaID)
}

func (r *ImageResolver) cloudinaryURL(publicID string) string {
	img, err := r.cld.Image(publicID)
	if err != nil {
		return ""
	}
	img.Transformation = r.transformation
	u, err := img.String()
	if err != nil {
		return ""
	}
	return u
}
