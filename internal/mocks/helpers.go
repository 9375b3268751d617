package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

const maxLogFields = 8

// NewPermissiveLogger returns a Logger mock that accepts any log call with up
// to maxLogFields fields at every level
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	l := NewLogger(t)
	for n := 0; n <= maxLogFields; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}

// NewPermissiveMetrics returns a MetricsCollector mock that accepts any call
func NewPermissiveMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MetricsCollector {
	m := NewMetricsCollector(t)
	m.EXPECT().RecordCacheResult(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordGeocodingRequest(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordWeatherRequest(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordLoadCycle(mock.Anything).Maybe()
	m.EXPECT().RecordReloadDropped().Maybe()
	return m
}
