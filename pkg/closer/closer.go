package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

type resource struct {
	name string
	fn   Func
}

// Closer обеспечивает потокобезопасное закрытие ресурсов в порядке LIFO:
// ресурсы, зарегистрированные последними, закрываются первыми.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	resources     []resource
	forcedTimeout time.Duration
}

// New создает Closer.
// forcedTimeout — время на принудительное закрытие оставшихся ресурсов,
// если контекст в Close истек раньше, чем они закрылись штатно.
func New(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия ресурса под именем name.
// Имя попадает в текст ошибки, чтобы по логу было видно, что не закрылось.
func (c *Closer) Add(name string, fn Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, fn: fn})
}

// Close закрывает зарегистрированные ресурсы в обратном порядке.
// При отмене контекста оставшиеся ресурсы закрываются принудительно
// параллельно, с собственным таймаутом.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		resources := c.resources
		c.mu.Unlock()

		var msgs []string
		for i := len(resources) - 1; i >= 0; i-- {
			res := resources[i]
			done := make(chan error, 1)
			go func() {
				done <- res.fn(ctx)
			}()

			select {
			case closeErr := <-done:
				if closeErr != nil {
					msgs = append(msgs, fmt.Sprintf("%s: %v", res.name, closeErr))
				}
			case <-ctx.Done():
				// Функция ресурса i уже запущена штатным проходом, повторный
				// вызов недопустим: принудительно закрываются только ресурсы
				// до нее, а ее завершение ожидается по каналу done.
				msgs = append(msgs, c.forcedClose(resources[:i], res.name, done)...)
				err = fmt.Errorf(
					"shutdown interrupted after %d/%d resources:\n%s",
					len(resources)-1-i, len(resources), strings.Join(msgs, "\n"),
				)
				return
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}

// forcedClose параллельно запускает оставшиеся функции закрытия и дожидается
// inflight — функции, уже запущенной штатным проходом. Каждая функция
// вызывается не более одного раза.
func (c *Closer) forcedClose(resources []resource, inflightName string, inflight <-chan error) []string {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		msgs []string
	)

	for _, res := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := res.fn(ctx); err != nil {
				mu.Lock()
				msgs = append(msgs, fmt.Sprintf("%s (forced): %v", res.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case err := <-inflight:
			if err != nil {
				mu.Lock()
				msgs = append(msgs, fmt.Sprintf("%s: %v", inflightName, err))
				mu.Unlock()
			}
		case <-ctx.Done():
			mu.Lock()
			msgs = append(msgs, fmt.Sprintf("%s: still closing after forced timeout", inflightName))
			mu.Unlock()
		}
	}()

	wg.Wait()
	return msgs
}
