package sqldb

// TranslateError открывает translate для внешних тестов пакета.
var TranslateError = translate
