// logger.go: zap adapter for sqrtcache.Logger
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"io"

	"github.com/agilira/sqrtcache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger implements sqrtcache.Logger on a SugaredLogger; keyvals map
// directly onto zap's loosely typed key-value pairs.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, keyvals ...interface{}) { l.sugar.Debugw(msg, keyvals...) }
func (l zapLogger) Info(msg string, keyvals ...interface{})  { l.sugar.Infow(msg, keyvals...) }
func (l zapLogger) Warn(msg string, keyvals ...interface{})  { l.sugar.Warnw(msg, keyvals...) }
func (l zapLogger) Error(msg string, keyvals ...interface{}) { l.sugar.Errorw(msg, keyvals...) }

var _ sqrtcache.Logger = zapLogger{}

// newLogger builds a console logger writing to w at a level that can be
// changed later through the returned AtomicLevel.
func newLogger(w io.Writer, level zapcore.Level) (*zap.Logger, zap.AtomicLevel) {
	atom := zap.NewAtomicLevelAt(level)
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), atom)
	return zap.New(core).Named("sqrtcheck"), atom
}
