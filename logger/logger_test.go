/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"}, // 测试未知级别
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("Level(%d).String() = %q, want %q", test.level, got, test.expected)
		}
	}
}

// TestNewLogger 测试创建新的日志器
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)

	log.Info("engine ready, precision=%d", 10)
	output := buf.String()

	if !strings.Contains(output, "engine ready, precision=10") {
		t.Errorf("Expected log output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected log output to contain '[INFO]', got: %s", output)
	}
}

// TestDefaultLogger_LevelFiltering 测试日志级别过滤
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		loggerLevel  Level
		messageLevel Level
		shouldLog    bool
	}{
		{DEBUG, DEBUG, true},
		{DEBUG, ERROR, true},
		{INFO, DEBUG, false},
		{INFO, INFO, true},
		{WARN, INFO, false},
		{WARN, ERROR, true},
		{ERROR, WARN, false},
		{ERROR, ERROR, true},
		{OFF, ERROR, false},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		log := NewLogger(test.loggerLevel, &buf)

		switch test.messageLevel {
		case DEBUG:
			log.Debug("probe")
		case INFO:
			log.Info("probe")
		case WARN:
			log.Warn("probe")
		case ERROR:
			log.Error("probe")
		}

		hasOutput := buf.Len() > 0
		if hasOutput != test.shouldLog {
			t.Errorf("logger level %s, message level %s: expected shouldLog=%v, got hasOutput=%v",
				test.loggerLevel.String(), test.messageLevel.String(), test.shouldLog, hasOutput)
		}
	}
}

// TestDefaultLogger_SetLevel 测试动态调整日志级别
func TestDefaultLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(DEBUG, &buf)

	log.SetLevel(ERROR)
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	if buf.Len() > 0 {
		t.Errorf("Expected no output for lower level logs, got: %s", buf.String())
	}

	log.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Errorf("Expected error message in output, got: %s", buf.String())
	}
}

// TestNewDiscardLogger 测试丢弃日志器
func TestNewDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()

	// 所有方法都不应产生输出或panic
	log.Debug("debug %s", "test")
	log.Info("info %d", 123)
	log.Warn("warn %v", true)
	log.Error("error message")
	log.SetLevel(DEBUG)
}

// TestGlobalLogger 测试全局日志器
func TestGlobalLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	testLogger := NewLogger(DEBUG, &buf)
	SetDefault(testLogger)

	if GetDefault() != testLogger {
		t.Error("Global logger was not set correctly")
	}

	Debug("global debug message")
	Info("global info message")
	Warn("global warn message")
	Error("global error message")

	output := buf.String()
	for _, msg := range []string{
		"global debug message",
		"global info message",
		"global warn message",
		"global error message",
	} {
		if !strings.Contains(output, msg) {
			t.Errorf("Expected output to contain '%s', got: %s", msg, output)
		}
	}
}

// TestConcurrentLogging 测试并发日志记录
func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			log.Info("concurrent message from goroutine %d", id)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	messageCount := strings.Count(buf.String(), "concurrent message")
	if messageCount != 10 {
		t.Errorf("Expected 10 concurrent messages, got %d", messageCount)
	}
}

// TestLogFormat 测试日志格式
func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)

	log.Info("format probe")
	output := buf.String()

	// 格式: [时间戳] [级别] 消息
	if !strings.Contains(output, "[") || !strings.Contains(output, "]") {
		t.Errorf("Expected timestamp in brackets, got: %s", output)
	}
	if !strings.HasSuffix(strings.TrimRight(output, "\n"), "format probe") {
		t.Errorf("Expected message at end of line, got: %s", output)
	}
}
