package web

import (
	"github.com/clipflow/clipflow/internal/video/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	unknownCategoryResult = ginx.Result{
		Code: errs.UnknownCategory.Code,
		Msg:  errs.UnknownCategory.Msg,
	}
	notOwnerResult = ginx.Result{
		Code: errs.NotOwner.Code,
		Msg:  errs.NotOwner.Msg,
	}
	videoNotFoundResult = ginx.Result{
		Code: errs.VideoNotFound.Code,
		Msg:  errs.VideoNotFound.Msg,
	}
)
