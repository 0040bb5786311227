package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mentor/internal/answer/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	questionNotFoundResult = ginx.Result{
		Code: errs.QuestionNotFound.Code,
		Msg:  errs.QuestionNotFound.Msg,
	}
	quotaExceededResult = ginx.Result{
		Code: errs.QuotaExceeded.Code,
		Msg:  errs.QuotaExceeded.Msg,
	}
	generationFailedResult = ginx.Result{
		Code: errs.GenerationFailed.Code,
		Msg:  errs.GenerationFailed.Msg,
	}
	commitConflictResult = ginx.Result{
		Code: errs.CommitConflict.Code,
		Msg:  errs.CommitConflict.Msg,
	}
)
