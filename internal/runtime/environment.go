package runtime

import (
	"sort"

	"github.com/ahrtr/gocontainer/set"
	"github.com/edwingeng/deque"

	"github.com/tangzhangming/fddl/internal/i18n"
)

// frame 一层词法作用域
type frame struct {
	values map[string]Value
	consts set.Interface
}

func newFrame() *frame {
	return &frame{
		values: make(map[string]Value),
		consts: set.New(),
	}
}

// Environment 作用域帧栈
// 队首为全局作用域，队尾为最内层作用域；查找和赋值由内向外，声明只作用于最内层
type Environment struct {
	frames deque.Deque
}

// NewEnvironment 创建只含全局作用域的环境
func NewEnvironment() *Environment {
	env := &Environment{frames: deque.NewDeque()}
	env.frames.PushBack(newFrame())
	return env
}

// Push 进入子作用域
func (e *Environment) Push() {
	e.frames.PushBack(newFrame())
}

// Pop 离开最内层作用域，全局作用域不会被弹出
func (e *Environment) Pop() {
	if e.frames.Len() > 1 {
		e.frames.PopBack()
	}
}

// Depth 帧数，全局作用域时为 1
func (e *Environment) Depth() int {
	return e.frames.Len()
}

func (e *Environment) current() *frame {
	return e.frames.Back().(*frame)
}

func (e *Environment) frameAt(i int) *frame {
	return e.frames.Peek(i).(*frame)
}

// Define 在当前作用域绑定变量，遮蔽外层同名绑定
// 同一作用域内重新声明常量会失败
func (e *Environment) Define(name string, v Value) error {
	f := e.current()
	if f.consts.Contains(name) {
		return NewError(ConstAssignment, i18n.RtConstRedeclare, name)
	}
	f.values[name] = v
	return nil
}

// DefineConst 在当前作用域绑定常量
func (e *Environment) DefineConst(name string, v Value) error {
	if err := e.Define(name, v); err != nil {
		return err
	}
	e.current().consts.Add(name)
	return nil
}

// IsConst 最近的同名绑定是否为常量
func (e *Environment) IsConst(name string) bool {
	for i := e.frames.Len() - 1; i >= 0; i-- {
		f := e.frameAt(i)
		if _, ok := f.values[name]; ok {
			return f.consts.Contains(name)
		}
	}
	return false
}

// Get 由内向外查找变量
func (e *Environment) Get(name string) (Value, error) {
	for i := e.frames.Len() - 1; i >= 0; i-- {
		if v, ok := e.frameAt(i).values[name]; ok {
			return v, nil
		}
	}
	return nil, NewError(UndefinedVariable, i18n.RtUndefinedVariable, name)
}

// Assign 更新最近的已有绑定
func (e *Environment) Assign(name string, v Value) error {
	for i := e.frames.Len() - 1; i >= 0; i-- {
		f := e.frameAt(i)
		if _, ok := f.values[name]; !ok {
			continue
		}
		if f.consts.Contains(name) {
			return NewError(ConstAssignment, i18n.RtConstAssign, name)
		}
		f.values[name] = v
		return nil
	}
	return NewError(UndefinedVariable, i18n.RtUndefinedVariable, name)
}

// Keys 全局作用域中的名字，已排序
func (e *Environment) Keys() []string {
	global := e.frameAt(0)
	keys := make([]string, 0, len(global.values))
	for k := range global.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
