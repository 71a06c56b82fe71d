package catalog

const (
	imageBaseURL    = "https://image.tmdb.org/t/p/w500"
	backdropBaseURL = "https://image.tmdb.org/t/p/original"

	posterPlaceholder   = "https://picsum.photos/500/750?blur=2"
	backdropPlaceholder = "https://picsum.photos/1920/1080?blur=2"
)

// PosterURL resolves a poster path to a full image URL, falling back to a
// placeholder when the catalog has no artwork.
func PosterURL(path string) string {
	if path == "" {
		return posterPlaceholder
	}
	return imageBaseURL + path
}

// BackdropURL resolves a backdrop path to a full image URL.
func BackdropURL(path string) string {
	if path == "" {
		return backdropPlaceholder
	}
	return backdropBaseURL + path
}
