package project_test

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/handlers/http/chi"
	project2 "github.com/soapking/-bhoomitech-portal-service/internal/adapters/handlers/http/chi/v1/project"
	"github.com/soapking/-bhoomitech-portal-service/internal/config"
	projectservice "github.com/soapking/-bhoomitech-portal-service/internal/core/service/project"
)

func newTestRouter(svc *projectservice.MockProjectService, uploadCfg config.FileUploadConfig) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := project2.NewProjectHandlerV1(svc, uploadCfg, discardLogger)
	return chi.NewRouter(discardLogger, handler, "", 64<<20)
}
