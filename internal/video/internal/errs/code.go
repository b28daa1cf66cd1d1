package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	UnknownCategory = ErrorCode{Code: 503002, Msg: "分类不存在"}
	NotOwner        = ErrorCode{Code: 503003, Msg: "只能删除自己的视频"}
	VideoNotFound   = ErrorCode{Code: 503004, Msg: "视频不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
