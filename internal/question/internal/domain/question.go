package domain

import "time"

// JobTrack 一个岗位方向，下面挂着若干面试题
type JobTrack struct {
	Id          int64
	Name        string
	Description string
	Utime       time.Time
}

type Question struct {
	Id int64
	// 所属岗位方向
	Tid  int64
	Text string
	// 冗余的岗位方向名字，生成 prompt 的时候要用
	TrackName string
	Utime     time.Time
}
