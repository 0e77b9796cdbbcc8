package http

import (
	"net/http"

	"github.com/fwojciec/blogsmith"
)

// TitlesResponse is the body of a successful title generation.
type TitlesResponse struct {
	Titles []*blogsmith.TitleCandidate `json:"titles"`
}

// ArticleResponse is the body of a successful article generation.
type ArticleResponse struct {
	Article *blogsmith.Article `json:"article"`
}

// SEOResponse is the body of a successful metadata generation.
type SEOResponse struct {
	SEOMetadata *blogsmith.SEOMetadata `json:"seoMetadata"`
}

func (s *Server) handleGenerateTitles(w http.ResponseWriter, r *http.Request) {
	var req blogsmith.TitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	titles, err := s.Titles.GenerateTitles(r.Context(), &req)
	if err != nil {
		s.writeError(w, r, err, "Failed to generate titles.")
		return
	}
	writeJSON(w, http.StatusOK, TitlesResponse{Titles: titles})
}

func (s *Server) handleGenerateArticle(w http.ResponseWriter, r *http.Request) {
	// Fields omitted from the body keep these defaults.
	req := blogsmith.ArticleRequest{GenerateSEO: true}
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	article, err := s.Articles.GenerateArticle(r.Context(), &req)
	if err != nil {
		s.writeError(w, r, err, "Failed to generate article.")
		return
	}
	writeJSON(w, http.StatusOK, ArticleResponse{Article: article})
}

func (s *Server) handleGenerateSEO(w http.ResponseWriter, r *http.Request) {
	var req blogsmith.MetadataRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	meta, err := s.Metadata.GenerateMetadata(r.Context(), &req)
	if err != nil {
		s.writeError(w, r, err, "Failed to generate SEO metadata.")
		return
	}
	writeJSON(w, http.StatusOK, SEOResponse{SEOMetadata: meta})
}
