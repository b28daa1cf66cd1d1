package startup

import (
	"github.com/clipflow/clipflow/internal/interactive"
	"github.com/clipflow/clipflow/internal/preference"
	"github.com/clipflow/clipflow/internal/subscription"
	testioc "github.com/clipflow/clipflow/internal/test/ioc"
	"github.com/clipflow/clipflow/internal/user"
	"github.com/clipflow/clipflow/internal/video"
)

// InitModule 顺带把用户表和视频表也建出来，订阅链路要联它们
func InitModule() (*subscription.Module, error) {
	db := testioc.InitDB()
	prefModule, err := preference.InitModule(db)
	if err != nil {
		return nil, err
	}
	intrModule, err := interactive.InitModule(db, prefModule)
	if err != nil {
		return nil, err
	}
	if _, err = user.InitModule(db, testioc.InitCache()); err != nil {
		return nil, err
	}
	if _, err = video.InitModule(db, intrModule); err != nil {
		return nil, err
	}
	return subscription.InitModule(db, prefModule)
}
