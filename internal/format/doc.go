// Package format prints Flint syntax trees back to source text.
//
// Назначение: канонический вывод AST; напечатанный текст разбирается
// обратно в структурно равное дерево (ast.Equal).
// Не делает: сохранения комментариев и исходной разметки.
// Зависимости: internal/ast, internal/token.
package format
