package answer

import (
	"github.com/ecodeclub/mentor/internal/answer/internal/service"
	"github.com/ecodeclub/mentor/internal/answer/internal/web"
)

type Module struct {
	Svc service.Service
	Hdl *web.Handler
}
