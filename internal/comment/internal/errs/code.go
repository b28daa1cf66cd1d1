package errs

var (
	SystemError  = ErrorCode{Code: 508001, Msg: "系统错误"}
	EmptyContent = ErrorCode{Code: 508002, Msg: "评论内容不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
