package web

import (
	"github.com/clipflow/clipflow/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateUserResult = ginx.Result{
		Code: errs.DuplicateUser.Code,
		Msg:  errs.DuplicateUser.Msg,
	}
	invalidUserOrPasswordResult = ginx.Result{
		Code: errs.InvalidUserOrPassword.Code,
		Msg:  errs.InvalidUserOrPassword.Msg,
	}
)
