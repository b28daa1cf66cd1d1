package web

import (
	"github.com/clipflow/clipflow/internal/comment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyContentResult = ginx.Result{
		Code: errs.EmptyContent.Code,
		Msg:  errs.EmptyContent.Msg,
	}
)
