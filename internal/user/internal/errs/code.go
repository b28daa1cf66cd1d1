package errs

var (
	SystemError = ErrorCode{Code: 501001, Msg: "系统错误"}

	DuplicateUser = ErrorCode{Code: 501002, Msg: "用户名或邮箱已被占用"}

	InvalidUserOrPassword = ErrorCode{Code: 501003, Msg: "邮箱或密码错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
