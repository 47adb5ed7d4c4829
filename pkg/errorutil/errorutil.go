package errorutil

import (
	"errors"
	"fmt"

	"github.com/tidwall/sjson"
)

const (
	CodeSuccess = 0 // 成功执行

	// 60–69: 用户输入或调用错误
	CodeInvalidUsage = 64 // 命令行用法错误（参数不合法等）
	CodeMissingInput = 65 // 缺失必须输入（如文件、路径等）
	CodeInvalidData  = 66 // 用户输入格式错误（数据非法）

	CodeAssertionFailed = 68 // 断言失败（分量不足、边耗尽等前置条件不满足）

	// 70–79: 程序自身错误
	CodeIOError     = 72 // 文件或设备读写失败
	CodeInternalErr = 74 // 内部 bug、panic、未捕捉异常

	// 80–89: 配置相关错误
	CodeConfigError = 80 // 配置文件有误或缺失
)

// ExitErrorWithCode 带退出码的错误，Message 给用户看，Err 是原始错误
type ExitErrorWithCode struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitErrorWithCode) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitErrorWithCode) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) error {
	return &ExitErrorWithCode{Code: code, Err: err}
}

func NewExitErrorWithMessage(code int, message string, err error) error {
	return &ExitErrorWithCode{Code: code, Message: message, Err: err}
}

// ExitCodeFromError 没有退出码的错误按内部错误处理
func ExitCodeFromError(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeInternalErr
}

// RootError 一直 Unwrap 到最里层
func RootError(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// JSON 输出 {"code":..,"message":..,"error":..,"cause":..}，空字段不输出
func (e *ExitErrorWithCode) JSON() string {
	doc, _ := sjson.Set("", "code", e.Code)
	if e.Message != "" {
		doc, _ = sjson.Set(doc, "message", e.Message)
	}
	if e.Err != nil {
		doc, _ = sjson.Set(doc, "error", e.Err.Error())
		if root := RootError(e.Err); root != e.Err {
			doc, _ = sjson.Set(doc, "cause", root.Error())
		}
	}
	return doc
}

// FormatErrorAndCode 把任意错误转换成 JSON 字符串和退出码
func FormatErrorAndCode(err error) (string, int) {
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.JSON(), exitErr.Code
	}
	return (&ExitErrorWithCode{Code: CodeInternalErr, Message: "未知错误", Err: err}).JSON(), CodeInternalErr
}
