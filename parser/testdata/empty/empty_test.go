package empty_test
