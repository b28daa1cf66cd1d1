package startup

import (
	"github.com/clipflow/clipflow/internal/interactive"
	"github.com/clipflow/clipflow/internal/preference"
	testioc "github.com/clipflow/clipflow/internal/test/ioc"
	"github.com/clipflow/clipflow/internal/video"
)

// InitModule 顺带把视频表也建出来，偏好分要查视频的分类
func InitModule() (*preference.Module, error) {
	db := testioc.InitDB()
	prefModule, err := preference.InitModule(db)
	if err != nil {
		return nil, err
	}
	intrModule, err := interactive.InitModule(db, prefModule)
	if err != nil {
		return nil, err
	}
	if _, err = video.InitModule(db, intrModule); err != nil {
		return nil, err
	}
	return prefModule, nil
}
