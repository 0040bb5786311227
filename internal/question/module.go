package question

import (
	"github.com/ecodeclub/mentor/internal/question/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *web.Handler
	AdminHdl *web.AdminHandler
}
