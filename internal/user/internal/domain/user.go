package domain

type User struct {
	Id       int64
	Username string
	Email    string
	// Password 只在注册和登录链路上有值，查询接口不会带出来
	Password         string
	Avatar           string
	SubscribersCount int64
}
